// Package cryptofolio tracks a set of cryptocurrency holdings, values them
// against live CoinGecko prices and reports profit and loss.
//
// The package is organized around a few small value types (Money, Quantity,
// Percent, all exact decimals), the Portfolio aggregate (ordered holdings
// plus an append-only transaction trail), a pure valuation engine (Valuate),
// a single-file JSON Store and the CoinGecko adapter.
//
// The cmd package implements the CLI on top, and renderer turns reports into
// markdown tables.
package cryptofolio
