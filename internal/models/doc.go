// Package models defines the core domain models for Homeboard.
//
// # Models
//
//   - User: a registered account, optionally belonging to one household
//   - Household: a group of users sharing chores, expenses, a shopping
//     list and a wall, joined via invite code
//   - Chore: a task with optional due date, recurrence and rotation
//   - ChoreComment: an immutable comment on a chore
//   - Expense: a shared cost paid by one member
//   - ExpenseShare: one member's owed portion of an expense
//   - ShoppingItem: an entry on the household shopping list
//   - WallPost: an announcement on the household wall
//   - Notification: a per-recipient event record
//
// # Design Principles
//
//  1. Entities reference each other by ID strings, never by pointer,
//     to avoid circular references.
//  2. Timestamps are Unix seconds (int64); zero means "not set".
//  3. Models carry no behavior beyond trivial helpers; the split and
//     recurrence computations live in their own packages.
package models
