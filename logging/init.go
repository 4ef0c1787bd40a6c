package logging

import (
	"log"
	"os"

	"github.com/neha-maurya01/SahaayAI/version"
)

func init() {
	log.SetOutput(os.Stdout)
	log.SetPrefix("[sahaay] ")
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)

	log.Println("Version:", version.Revision)
}
