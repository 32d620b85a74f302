package storage

// Package storage provides the durable key/value contract used for the cart
// and language keys, with backends for Fyne preferences, gdata save files,
// and process memory.
