package utils

func ToIntSlice(slice []any) []int {
	intSlice := make([]int, 0)
	for _, v := range slice {
		if f, ok := v.(float64); ok {
			intSlice = append(intSlice, int(f))
		}
	}
	return intSlice
}
