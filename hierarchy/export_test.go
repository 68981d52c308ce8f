package hierarchy

// WithSlotLimit exposes the identifier ceiling to hierarchy_test.
var WithSlotLimit = withSlotLimit
