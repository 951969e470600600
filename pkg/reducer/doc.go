/*
The reducer finds the smallest set of colours whose removal leaves a conflict graph without edges.

BranchAndBound walks every "remove one conflicted colour" state in ascending colour order and drops a branch as
soon as it can no longer beat the best removal set found so far. The incumbent size is threaded through the
recursion explicitly, so sibling branches share it. Exhaustive is the same walk without any pruning and only exists
to cross-check and benchmark the pruned search. PerComponent splits the graph into connected components first and
solves them independently.
*/
package reducer
