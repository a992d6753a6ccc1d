// Package tickets simulates a box office selling 25-unit tickets to a queue
// of customers paying with 25, 50 or 100 bills, starting with an empty till.
//
// The clerk serves the queue in order and makes change greedily from the
// bills collected so far. For a 100 bill the clerk prefers one 50 plus one
// 25 over three 25s; this tie-break is part of the contract, since the two
// strategies diverge on some queues (holding 50s hostage can starve later
// 100s of 25s).
//
// SellTickets answers a single question: can the whole queue be served?
// It returns false the instant change cannot be made.
//
// Complexity: O(len(queue)) time, O(1) space. Values other than the three
// Bill constants are undefined input; callers pre-validate.
package tickets
