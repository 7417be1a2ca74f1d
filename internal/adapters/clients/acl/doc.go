// Package acl is the anti-corruption layer between the spreadsheet values API
// and the domain.
//
// External DTOs (value ranges, spreadsheet metadata, Google-style error
// bodies) stay unexported in this package. Adapters hand the rest of the
// service only domain types:
//
//   - [SheetsFeed] implements ports.QuoteFeed and ports.HealthChecker
//   - [MapQuoteRow] and [MapCategoryRow] turn raw rows into domain DTOs
//   - transport failures and non-2xx responses become
//     [domain.UnavailableError], keeping the upstream status code
//
// Rows are positional. A quote row is
//
//	label | text | author | category | language | active | tags
//
// and a category row is
//
//	name | emoji | description | color | active
//
// Rows that cannot be mapped are dropped without error; the feed is
// best-effort and a partially broken sheet still yields its good rows.
package acl
