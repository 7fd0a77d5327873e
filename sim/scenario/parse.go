// Parses the line-oriented event-description format into initial events.
// Each line is "<timestamp> <kind> <id> ..."; blank lines and lines
// starting with '#' are skipped. Malformed lines fail the whole parse
// with the offending line number rather than producing garbage events.

package scenario

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Tefika24/taxi-app-official/sim"
)

// ParseEventFile reads initial events from the file at path.
func ParseEventFile(path string) ([]sim.Event, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open event file: %w", err)
	}
	defer file.Close()

	events, err := ParseEvents(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return events, nil
}

// ParseEvents reads initial events from r, one per line:
//
//	<timestamp> DriverRequest <id> <row,col> <speed>
//	<timestamp> RiderRequest <id> <origin> <destination> <patience>
func ParseEvents(r io.Reader) ([]sim.Event, error) {
	var events []sim.Event
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		tokens := strings.Fields(line)
		if len(tokens) < 2 {
			return nil, fmt.Errorf("line %d: want \"<timestamp> <kind> ...\", got %q", lineNo, line)
		}
		timestamp, err := strconv.ParseInt(tokens[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid timestamp %q: %w", lineNo, tokens[0], err)
		}
		if timestamp < 0 {
			return nil, fmt.Errorf("line %d: timestamp must be non-negative, got %d", lineNo, timestamp)
		}

		switch kind := tokens[1]; kind {
		case "DriverRequest":
			event, err := parseDriverRequest(timestamp, tokens)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			events = append(events, event)
		case "RiderRequest":
			event, err := parseRiderRequest(timestamp, tokens)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			events = append(events, event)
		default:
			return nil, fmt.Errorf("line %d: unknown event kind %q", lineNo, kind)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read event file: %w", err)
	}

	logrus.Debugf("parsed %d initial events", len(events))
	return events, nil
}

func parseDriverRequest(timestamp int64, tokens []string) (sim.Event, error) {
	if len(tokens) != 5 {
		return nil, fmt.Errorf("DriverRequest wants \"<id> <row,col> <speed>\", got %d fields", len(tokens)-2)
	}
	location, err := sim.ParseLocation(tokens[3])
	if err != nil {
		return nil, err
	}
	speed, err := strconv.Atoi(tokens[4])
	if err != nil {
		return nil, fmt.Errorf("invalid speed %q: %w", tokens[4], err)
	}
	driver, err := sim.NewDriver(tokens[2], location, speed)
	if err != nil {
		return nil, err
	}
	return sim.NewDriverRequest(timestamp, driver), nil
}

func parseRiderRequest(timestamp int64, tokens []string) (sim.Event, error) {
	if len(tokens) != 6 {
		return nil, fmt.Errorf("RiderRequest wants \"<id> <origin> <destination> <patience>\", got %d fields", len(tokens)-2)
	}
	origin, err := sim.ParseLocation(tokens[3])
	if err != nil {
		return nil, err
	}
	destination, err := sim.ParseLocation(tokens[4])
	if err != nil {
		return nil, err
	}
	patience, err := strconv.ParseInt(tokens[5], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid patience %q: %w", tokens[5], err)
	}
	rider, err := sim.NewRider(tokens[2], patience, origin, destination)
	if err != nil {
		return nil, err
	}
	return sim.NewRiderRequest(timestamp, rider), nil
}
