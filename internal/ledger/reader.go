package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ErrFormat reports that the ledger source is not the expected
// day -> user -> dish -> count object. Errors returned by Load either wrap
// ErrFormat or the underlying filesystem error; nothing in between.
var ErrFormat = errors.New("malformed ledger document")

// Load reads a ledger from the JSON file at path. The load is atomic: either
// the whole document parses and validates, or an error is returned and no
// partial ledger is produced.
func Load(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	defer f.Close()

	l, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse ledger %s: %w", path, err)
	}
	return l, nil
}

// parse walks the document token by token instead of decoding into nested
// maps, because Go maps forget key order and the reports must iterate days,
// users and dishes in source order.
func parse(r io.Reader) (*Ledger, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	var l Ledger
	for dec.More() {
		dayName, err := key(dec)
		if err != nil {
			return nil, err
		}
		day := Day{Name: dayName}

		if err := expectDelim(dec, '{'); err != nil {
			return nil, err
		}
		for dec.More() {
			userKey, err := key(dec)
			if err != nil {
				return nil, err
			}
			orders := UserOrders{Key: userKey}

			if err := expectDelim(dec, '{'); err != nil {
				return nil, err
			}
			for dec.More() {
				dishName, err := key(dec)
				if err != nil {
					return nil, err
				}
				count, err := servingCount(dec, dayName, userKey, dishName)
				if err != nil {
					return nil, err
				}
				orders.Dishes = append(orders.Dishes, Dish{Name: dishName, Count: count})
			}
			if err := expectDelim(dec, '}'); err != nil {
				return nil, err
			}
			day.Users = append(day.Users, orders)
		}
		if err := expectDelim(dec, '}'); err != nil {
			return nil, err
		}
		l.Days = append(l.Days, day)
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after ledger object", ErrFormat)
	}
	return &l, nil
}

func servingCount(dec *json.Decoder, day, user, dishName string) (int, error) {
	tok, err := dec.Token()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	num, ok := tok.(json.Number)
	if !ok {
		return 0, fmt.Errorf("%w: %s/%s/%s: serving count must be a number, got %v",
			ErrFormat, day, user, dishName, tok)
	}
	n, err := strconv.Atoi(num.String())
	if err != nil {
		return 0, fmt.Errorf("%w: %s/%s/%s: serving count %s is not an integer",
			ErrFormat, day, user, dishName, num)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: %s/%s/%s: serving count %d, want >= 1",
			ErrFormat, day, user, dishName, n)
	}
	return n, nil
}

func key(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFormat, err)
	}
	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("%w: expected object key, got %v", ErrFormat, tok)
	}
	return s, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("%w: expected %q, got %v", ErrFormat, want, tok)
	}
	return nil
}
