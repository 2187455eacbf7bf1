// Package assistant turns ranked catalog matches into conversational
// replies.
//
// The Assistant type orchestrates a chat turn:
//   - Rank the catalog against the message with match.Scorer
//   - Assemble a prompt from the market knowledge base, the user
//     context and the top PromptMatches results
//   - Generate the reply through an ai.Responder
//   - Append HTML property cards for the top CardMatches results when
//     the message asks for listings
package assistant
