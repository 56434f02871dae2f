package card

type List []Card

// Count 获取总牌数
func (cl List) Count() int {
	return len(cl)
}

func (cl List) Strings() []string {
	return Cards2strings(cl)
}

func (cl List) Contains(c Card) bool {
	for _, cc := range cl {
		if cc == c {
			return true
		}
	}
	return false
}
