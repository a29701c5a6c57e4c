package main

import (
	gortty "github.com/kelpie-radio/gortty/src"
)

func main() {
	gortty.Text2BaudotMain()
}
