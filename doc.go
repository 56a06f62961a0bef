// Package tickpick provides the types and functions to fetch, cache and
// search the public NASDAQ Trader symbol directory. It is designed to be
// local-first: the directory is fetched at most once per calendar day and
// then served from a human-readable snapshot on disk.
//
// The core functionalities include:
//   - Symbol Directory: An immutable, sorted collection of ticker listings
//     (symbol, security name, listing exchange) built once per run.
//   - Ranked Search: A priority ranking of listings against a live query
//     (exact symbol, symbol prefix, symbol substring, name substring).
//   - Data Persistence: Encoding and decoding of the directory to and from
//     a human-readable JSONL snapshot, reused within the same calendar day.
//   - Market Access: Latest quote lookup and an AI-generated company
//     summary for a selected symbol.
//
// This package serves as the foundational logic for the `tkp` command-line
// tool.
package tickpick
