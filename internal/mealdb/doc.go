// Package mealdb provides an HTTP client for MealDB-style catalog endpoints.
//
// # Overview
//
// The client issues a single GET against a configured URL and decodes the
// JSON envelope into catalog items. It knows nothing about loading state or
// filtering; the state package owns that lifecycle.
//
//	client, err := mealdb.NewClient(mealdb.Options{
//		Endpoint: "https://www.themealdb.com/api/json/v1/1/filter.php?c=Seafood",
//	})
//	if err != nil {
//		return err
//	}
//	items, err := client.FetchCatalog(ctx)
//
// # Response Shape
//
// The upstream wraps its records under a named key:
//
//	{"meals":[{"idMeal":"52773","strMeal":"Honey Teriyaki Salmon","strMealThumb":"https://..."}]}
//
// The key and the three record fields are configurable through Schema so
// sibling APIs (drinks, ingredients) can be browsed with the same client.
// A missing or null list key decodes to zero items.
//
// # Request Handling
//
// All requests:
//   - Use the caller's context for cancellation
//   - Set Accept: application/json
//   - Set User-Agent (platter/0.1 unless configured)
//   - Forward the fetch attempt id as X-Request-ID when the context carries one
//   - Have no client-side timeout unless Options.Timeout is set
//
// # Errors
//
// Every failure is one of the catalog error kinds:
//
//   - *catalog.TransportError: "execute request: dial tcp: connection refused"
//   - *catalog.HTTPStatusError: "api /api/json/v1/1/filter.php returned status 500"
//   - *catalog.MalformedResponseError: "decode response: unexpected end of JSON input"
//
// # Testing
//
// The mealdbtest subpackage serves scripted responses from a chi router so
// client, store, and app tests can run against a real HTTP stack.
package mealdb
