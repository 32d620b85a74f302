package locale

// Package locale models the two supported UI languages, their layout
// direction, and the persisted language toggle. Switching to a language with
// a different direction is reported as requiring a restart instead of
// mutating global layout state.
