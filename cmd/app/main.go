package main

import (
	_ "time/tzdata"

	"github.com/labstack/gommon/log"
)

func main() {
	if err := execute(); err != nil {
		log.Fatal(err)
	}
}
