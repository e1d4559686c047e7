package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	ppp "github.com/mfkiwl/ntua-ppp"
)

var (
	navFile = flag.String("nav", "", "RINEX 3.x navigation file")
	onlySys = flag.String("sys", "", "restrict to one constellation (RINEX character, e.g. G)")
)

func main() {
	flag.Parse()
	if *navFile == "" {
		log.Fatal("no navigation file provided")
	}
	f, err := os.Open(*navFile)
	if err != nil {
		log.Fatalf("could not open %s: %s", *navFile, err)
	}
	defer f.Close()

	rdr, err := ppp.NewNavigationReader(f)
	if err != nil {
		log.Fatalf("%s: %s", *navFile, err)
	}

	var filter *ppp.System
	if *onlySys != "" {
		sys, err := ppp.SystemFromRINEX((*onlySys)[0])
		if err != nil {
			log.Fatalf("could not understand system `%s`: %s", *onlySys, err)
		}
		filter = &sys
	}

	count := 0
	for {
		if filter != nil {
			sys, err := rdr.PeekSystem()
			if err == io.EOF {
				break
			}
			if err != nil {
				log.Fatalf("%s: %s", *navFile, err)
			}
			if sys != *filter {
				if err = rdr.SkipNext(); err != nil {
					log.Fatalf("%s: %s", *navFile, err)
				}
				continue
			}
		}
		rec, err := rdr.ReadNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf("%s: %s", *navFile, err)
		}
		toc := rec.TimeOfClock()
		fmt.Printf("%s  toc %s (MJD %10.4f)  iode %3d  health %d  tgd %7.3f m\n",
			rec.ID(), toc.Time().Format("2006-01-02 15:04:05"), toc.MJD(), rec.IODE(), rec.Health(),
			rec.TGD()*ppp.CLight)
		count++
	}
	log.Printf("%d records read from %s (RINEX %s)", count, *navFile, rdr.Version())
}
