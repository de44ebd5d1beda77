package domain

type ParseResult struct {
	Filename string
	Records  []*SalesRecord // filled in case of a success
	Error    error          // filled in case of an error
}
