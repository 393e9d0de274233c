package cmd

const (
	// Output formats.
	formatJSON  = "json"
	formatTable = "table"
)
