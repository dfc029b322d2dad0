package helpers

import (
	// Go Internal Packages
	"encoding/json"
	"fmt"
)

// PrintStruct prints a given struct in pretty format with indent
func PrintStruct(v any) {
	res, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%+v\n", v)
		return
	}
	fmt.Println(string(res))
}
