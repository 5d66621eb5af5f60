package cmdshared

import (
	"fmt"
	"os"
)

func Exitf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
	os.Exit(1)
}

func Exitln(a ...interface{}) {
	fmt.Println(a...)
	os.Exit(1)
}
