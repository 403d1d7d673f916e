// Package chats provides the data model for Messages API conversations.
//
// It is organized into sub-packages:
//   - [askonce/pkg/chats/role] — conversation roles (user, assistant)
//   - [askonce/pkg/chats/segment] — tagged content segments (text, thinking, tool use, unknown)
//   - [askonce/pkg/chats/message] — messages composed of a role and ordered segments
//
// No provider or API code is included; chats is a foundation layer that
// clients build on.
package chats
