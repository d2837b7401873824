// Command vapidgen prints a fresh VAPID key pair in environment variable form.
package main

import (
	"fmt"
	"os"

	webpush "github.com/SherClockHolmes/webpush-go"
)

func main() {
	privateKey, publicKey, err := webpush.GenerateVAPIDKeys()
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate VAPID keys: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("VAPID_PUBLICKEY=%s\n", publicKey)
	fmt.Printf("VAPID_PRIVATEKEY=%s\n", privateKey)
}
