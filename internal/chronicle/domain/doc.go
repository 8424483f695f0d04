// Package domain defines the campaign-scoped entities the chronicle service
// stores and resolves: campaigns, characters, character aliases, and play
// sessions. Entities are created through Create* constructors that validate
// input and stamp identity and timestamps via injected dependencies.
package domain
