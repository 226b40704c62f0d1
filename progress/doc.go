// SPDX-License-Identifier: MIT

// Package progress keeps per-question correctness counters.
//
// A Store is created once at process start, handed to whatever grades answers
// (see package quiz) and cleared only through Reset. MemoryStore keeps its
// records in process memory; nothing is persisted and nothing survives a
// restart. The matrix core never touches this state.
//
// Record JSON shape:
//
//	{"correct": 3, "incorrect": 1, "lastAttemptTimestamp": "2024-05-01T10:00:00Z"}
package progress
