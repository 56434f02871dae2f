package card

func Cards2strings(cs []Card) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Short())
	}
	return out
}
