// Package models defines the core domain models for Evenly.
//
// # Models
//
//   - User: A member of the shared-expense group
//   - Expense: A cost paid by one user and split among several
//   - Split: One participant's owed portion of an Expense
//   - Payment: A settlement transfer between two users
//
// Balances and simplified debts are derived views, recomputed from the full
// record set on every read; they are never persisted and have no model here
// (see the calculator package for the derived types).
//
// # Design Principles
//
// 1. **Exact money**: amounts are stored and computed as integer cents.
// Decimal currency exists only at the API boundary.
// 2. **Avoid circular references**: relationships use ID strings, not
// pointers.
// 3. **Group ownership**: expenses and payments belong to the group as a
// whole; users are deletable only while uninvolved in any of them.
package models
