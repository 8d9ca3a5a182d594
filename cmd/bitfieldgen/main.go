// Command bitfieldgen generates typed bit field accessors from a YAML table.
//
//	//go:generate go run github.com/zeebo/bitfield/cmd/bitfieldgen gen -i regs.yaml
package main

func main() { execute() }
