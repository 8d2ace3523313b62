// Command stun-decode decodes a base64-encoded STUN message and
// prints its header fields and decoded attribute values.
package main

import (
	"encoding/base64"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/halfwave/stun"
)

func main() {
	key := flag.String("key", "", "integrity key, if the message carries MESSAGE-INTEGRITY")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", "stun-decode")
		fmt.Fprintln(os.Stderr, "stun-decode AAEAHCESpEJML0JTQWsyVXkwcmGALwAWaHR0cDovL2xvY2FsaG9zdDozMDAwLwAA")
		fmt.Fprintln(os.Stderr, "First argument must be a base64.StdEncoding-encoded message")
		flag.PrintDefaults()
	}
	flag.Parse()
	data, err := base64.StdEncoding.DecodeString(flag.Arg(0))
	if err != nil {
		log.Fatalln("unable to decode base64 value:", err)
	}
	var keyBytes []byte
	if *key != "" {
		keyBytes = []byte(*key)
	}
	m, err := stun.Decode(data, keyBytes)
	if err != nil {
		log.Fatalln("unable to decode message:", err)
	}
	fmt.Println(m)
	fmt.Println("integrity:", m.Integrity, "fingerprint:", m.Fingerprint)

	values, err := m.Values()
	if err != nil {
		log.Fatalln("unable to decode attribute values:", err)
	}
	for name, v := range values {
		fmt.Printf("  %s: %v\n", name, v)
	}
}
