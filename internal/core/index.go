package core

// Index is a per-(table, column) mapping from Value to row ordinal. One
// Index exists for the primary-key column and for each unique column.
// Null is never indexed.
type Index map[Value]int
