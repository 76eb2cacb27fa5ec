// Package acl is the anti-corruption layer between the remote post API and
// the quote domain.
//
// The remote stores posts, not quotes. Everything that knows about the post
// shape lives here:
//
//   - [RemoteClient] implements ports.QuoteRemote over the post endpoint
//   - [TranslatePosts] turns post records into quotes, skipping unusable ones
//   - [MapHTTPError] turns transport failures and non-2xx responses into
//     domain.NetworkError
//
// Post records map to quotes as follows:
//
//	title           → Quote.Text
//	category        → Quote.Category when present
//	userId          → Quote.Category as "user-<userId>" otherwise
//
// Pushing sends the reverse mapping with the quote text as both title and
// body so the remote keeps something readable.
package acl
