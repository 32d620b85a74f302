package cart

// Package cart holds the authoritative list of cart line items. Mutations
// apply in memory first and then schedule a fire-and-forget write of the
// whole collection to durable storage.
