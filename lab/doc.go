// Package lab is the administrative surface of the hotel graph analysis:
// it builds the precedence and activity graphs from the current room list,
// runs the topological sort and the critical-path analysis, prints the
// reports, dumps the weight table, and resets the weight cache.
//
// Failure policy:
//
//	A structural cycle in one phase is recorded in the Report and logged;
//	the other phase still runs and still reports. Build errors (such as
//	duplicate room numbers) and context cancellation abort the run.
package lab
