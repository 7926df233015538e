// Command gmsmctl is a command-line front end over the gmsm SM2/SM3/SM4
// engine: digesting, signing, verifying, and encrypting files from the
// shell without writing Go.
package main

func main() {
	Execute()
}
