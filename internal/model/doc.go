package model

// Package model defines domain data structures shared across the app: catalog
// products, cart line items, screen geometry, and the flyout slot phases.
// Structures carry JSON tags so they can be persisted and decoded directly.
