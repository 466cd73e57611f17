// Command mmrctl is a thin operational shell over a bolt-backed Merkle
// Mountain Range log: create one, append leaves, print its root, and
// generate or check inclusion proofs.
package main

func main() {
	Execute()
}
