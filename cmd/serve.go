package cmd

import (
	"context"
	"flag"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/etnz/cryptofolio"
)

// serveCmd holds the flags for the 'serve' subcommand.
type serveCmd struct {
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the portfolio as a read-only JSON API" }
func (*serveCmd) Usage() string {
	return `cft serve [-addr <host:port>]

  Serves GET /portfolio, /valuation, /search?q=<query> and /market.
  The API is read-only: the portfolio file has no locking, so mutations stay
  with the CLI that owns it.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", ":8080", "Listen address for the API")
}

func (c *serveCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	router := newRouter(openStore(), newQuoteService())

	logrus.WithField("addr", c.addr).Info("serving portfolio API")
	if err := router.Run(c.addr); err != nil {
		logrus.WithError(err).Error("server stopped")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// newRouter builds the gin engine. Split out from Execute so tests can drive
// it with httptest.
func newRouter(store *cryptofolio.Store, gecko *cryptofolio.CoinGecko) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())
	router.Use(cors.Default())

	router.GET("/portfolio", func(c *gin.Context) {
		p, err := store.Load()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, p)
	})

	router.GET("/valuation", func(c *gin.Context) {
		p, err := store.Load()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		valuation := cryptofolio.Valuate(p, gecko.QuoteFunc(c.Request.Context()))
		c.JSON(http.StatusOK, valuation)
	})

	router.GET("/search", func(c *gin.Context) {
		results, err := gecko.Search(c.Request.Context(), c.Query("q"))
		if err != nil {
			// same policy as the CLI: a failed search is an empty result
			logrus.WithError(err).Warn("search failed")
			results = []cryptofolio.CoinSummary{}
		}
		c.JSON(http.StatusOK, gin.H{"coins": results})
	})

	router.GET("/market", func(c *gin.Context) {
		overview, err := gecko.GlobalMarket(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, overview)
	})

	return router
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logrus.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"elapsed": time.Since(start),
		}).Info("request")
	}
}
