package simmer_test

import (
	"fmt"

	"github.com/simmer-go/simmer"
)

func Example() {
	ice := simmer.F(32)
	fmt.Println("water freezes at", ice)

	iceC := ice.ToCelsius()
	fmt.Println("water freezes at", iceC)

	// drop the unit when a bare number is needed
	fmt.Println("here's a number:", iceC.Value())
	// Output:
	// water freezes at 32 °F
	// water freezes at 0 °C
	// here's a number: 0
}

func ExampleTemperature_Add() {
	warmer := simmer.F(32).Add(simmer.C(0))
	fmt.Println(warmer)
	// Output:
	// 64 °F
}

func ExampleTemperature_Append() {
	// heapless rendering: format into a caller-owned buffer
	buf := make([]byte, 0, 32)
	buf = simmer.K(273.15).Append(buf)
	fmt.Println(string(buf))
	// Output:
	// 273.15 K
}
