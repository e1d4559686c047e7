package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	ppp "github.com/mfkiwl/ntua-ppp"
	"github.com/spf13/viper"
)

const (
	defaultScenario = "~~unset~~"
	dateFormat      = "2006-01-02 15:04:05"
)

var scenario string

func init() {
	flag.StringVar(&scenario, "scenario", defaultScenario, "scenario TOML file")
}

func main() {
	flag.Parse()
	if scenario == defaultScenario {
		log.Fatal("no scenario provided")
	}
	scenario = strings.Replace(scenario, ".toml", "", 1)
	viper.AddConfigPath(".")
	viper.SetConfigName(scenario)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("./%s.toml: Error %s", scenario, err)
	}

	navFile := viper.GetString("nav.file")
	if navFile == "" {
		log.Fatal("nav.file not set in scenario")
	}
	f, err := os.Open(navFile)
	if err != nil {
		log.Fatalf("could not open %s: %s", navFile, err)
	}
	set, err := ppp.ReadAll(f)
	f.Close()
	if err != nil {
		log.Fatalf("%s: %s", navFile, err)
	}

	// Epochs of the scenario are read in each satellite's native time
	// scale; the scenario author is responsible for that alignment.
	start, err := time.Parse(dateFormat, viper.GetString("compute.start"))
	if err != nil {
		log.Fatalf("compute.start: %s", err)
	}
	end, err := time.Parse(dateFormat, viper.GetString("compute.end"))
	if err != nil {
		log.Fatalf("compute.end: %s", err)
	}
	step := viper.GetDuration("compute.step")
	if step == 0 {
		step = 15 * time.Minute
	}
	sats := viper.GetStringSlice("compute.satellites")
	if len(sats) == 0 {
		log.Fatal("compute.satellites not set in scenario")
	}

	out := os.Stdout
	if path := viper.GetString("output.path"); path != "" {
		out, err = os.Create(path)
		if err != nil {
			log.Fatalf("could not create %s: %s", path, err)
		}
		defer out.Close()
		log.Printf("writing states to %s", path)
	}
	w := csv.NewWriter(out)
	w.Write([]string{"satellite", "epoch", "mjd", "x_m", "y_m", "z_m", "clock_s"})

	for _, satStr := range sats {
		id, err := ppp.ParseSatelliteID(satStr)
		if err != nil {
			log.Fatalf("could not understand satellite `%s`: %s", satStr, err)
		}
		scale := id.System.TimeScale()
		rows := 0
		for t := start; !t.After(end); t = t.Add(step) {
			epoch := ppp.NewEpoch(t, scale)
			rec, err := set.Select(id, epoch)
			if err != nil {
				log.Printf("%s %s: %s", id, t.Format(dateFormat), err)
				continue
			}
			state, bias, err := ppp.ComputeStateAndClock(rec, epoch)
			if err != nil {
				log.Printf("%s %s: %s", id, t.Format(dateFormat), err)
				continue
			}
			w.Write([]string{
				id.String(),
				t.Format(dateFormat),
				fmt.Sprintf("%.6f", epoch.MJD()),
				fmt.Sprintf("%.3f", state.Position[0]),
				fmt.Sprintf("%.3f", state.Position[1]),
				fmt.Sprintf("%.3f", state.Position[2]),
				fmt.Sprintf("%.12e", bias),
			})
			rows++
		}
		log.Printf("%s: %d epochs computed", id, rows)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatalf("could not write output: %s", err)
	}
}
