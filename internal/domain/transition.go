package domain

// Transition is one row of the lifecycle table: applying Op to a work item
// in From moves it to To.
type Transition struct {
	From Status
	Op   Operation
	To   Status
}

// transitionTable is the complete set of legal transitions. Anything not
// listed here fails with ErrInvalidTransition.
var transitionTable = []Transition{
	{From: StatusDraft, Op: OpSubmit, To: StatusRequested},
	{From: StatusRequested, Op: OpAssign, To: StatusAssigned},
	{From: StatusAssigned, Op: OpStart, To: StatusInProgress},
	{From: StatusInProgress, Op: OpComplete, To: StatusCompleted},
	{From: StatusCompleted, Op: OpApprove, To: StatusApproved},
	{From: StatusCompleted, Op: OpReject, To: StatusRejected},
	{From: StatusRequested, Op: OpCancel, To: StatusCancelled},
	{From: StatusAssigned, Op: OpCancel, To: StatusCancelled},
	{From: StatusInProgress, Op: OpCancel, To: StatusCancelled},
}

var transitionIndex = buildTransitionIndex(transitionTable)

func buildTransitionIndex(table []Transition) map[Status]map[Operation]Status {
	idx := make(map[Status]map[Operation]Status, len(AllStatuses))
	for _, t := range table {
		if idx[t.From] == nil {
			idx[t.From] = make(map[Operation]Status)
		}
		idx[t.From][t.Op] = t.To
	}
	return idx
}

// Transitions returns a copy of the lifecycle table.
func Transitions() []Transition {
	out := make([]Transition, len(transitionTable))
	copy(out, transitionTable)
	return out
}

// NextStatus returns the status reached by applying op in from.
func NextStatus(from Status, op Operation) (Status, bool) {
	to, ok := transitionIndex[from][op]
	return to, ok
}

// CanApply reports whether op is legal from status, ignoring actor guards.
func CanApply(from Status, op Operation) bool {
	_, ok := NextStatus(from, op)
	return ok
}

// OperationsFrom lists the operations legal in from, in AllOperations order.
// Terminal statuses return an empty slice.
func OperationsFrom(from Status) []Operation {
	ops := make([]Operation, 0, 2)
	for _, op := range AllOperations {
		if CanApply(from, op) {
			ops = append(ops, op)
		}
	}
	return ops
}
