package limits

// #region resolve
// Resolve returns the applicable limit for a food and a requested
// pesticide name. The name is normalized first, falling back to the
// requested name verbatim when nothing matches; the exact (food, name)
// pair is then looked up, first matching row wins. Unregistered pairs
// resolve to DefaultLimit under the default policy: absence of data is
// never absence of restriction.
func Resolve(table Table, food, requestedPesticide string) ResolvedLimit {
	name, ok := ResolveName(table, requestedPesticide)
	if !ok {
		name = requestedPesticide
	}
	for _, e := range table {
		if e.Food == food && e.Pesticide == name {
			return ResolvedLimit{Pesticide: name, Value: e.Limit, Source: SourceExplicit}
		}
	}
	return ResolvedLimit{Pesticide: name, Value: DefaultLimit, Source: SourceDefaultPolicy}
}

// #endregion resolve
