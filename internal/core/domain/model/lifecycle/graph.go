package lifecycle

// defaultGraph lists the legal destinations of every status. Slice order is
// the order NextPossibleStates reports.
func defaultGraph() map[Status][]Status {
	return map[Status][]Status{
		Received:      {InAnalysis, Cancelled},
		InAnalysis:    {Approved, Rejected, Cancelled},
		Approved:      {InStorage, Cancelled},
		Rejected:      {InReturn, Eliminated},
		InStorage:     {InPreparation, Cancelled},
		InPreparation: {InShipping, InStorage, Cancelled},
		InShipping:    {Delivered, InReturn},
		Delivered:     {},
		InReturn:      {Received, Eliminated},
		Eliminated:    {},
		Cancelled:     {InStorage},
	}
}
