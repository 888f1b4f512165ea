package db

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/0xPolygon/swaplayer/messages"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	sqlite "github.com/mattn/go-sqlite3"
	"github.com/russross/meddler"
)

// init registers tags to be used to read/write from SQL DBs using meddler
func init() {
	meddler.Default = meddler.SQLite
	meddler.Register("hash", HashMeddler{})
	meddler.Register("universaladdress", UniversalAddressMeddler{})
	meddler.Register("uint64", Uint64Meddler{})
	meddler.Register("uint256", Uint256Meddler{})
}

func SQLiteErr(err error) (*sqlite.Error, bool) {
	sqliteErr := &sqlite.Error{}
	if ok := errors.As(err, sqliteErr); ok {
		return sqliteErr, true
	}
	if driverErr, ok := meddler.DriverErr(err); ok {
		return sqliteErr, errors.As(driverErr, sqliteErr)
	}
	return sqliteErr, false
}

// IsUniqueConstraintErr reports whether err was caused by a UNIQUE or PRIMARY KEY violation
func IsUniqueConstraintErr(err error) bool {
	sqliteErr, ok := SQLiteErr(err)
	if !ok {
		return false
	}
	return sqliteErr.ExtendedCode == UniqueConstrain || sqliteErr.ExtendedCode == sqlite.ErrConstraintUnique
}

// SlicePtrsToSlice converts any []*Foo to []Foo
func SlicePtrsToSlice(slice interface{}) interface{} {
	v := reflect.ValueOf(slice)
	vLen := v.Len()
	typ := v.Type().Elem().Elem()
	res := reflect.MakeSlice(reflect.SliceOf(typ), vLen, vLen)
	for i := 0; i < vLen; i++ {
		res.Index(i).Set(v.Index(i).Elem())
	}
	return res.Interface()
}

// HashMeddler encodes or decodes the field value to or from string
type HashMeddler struct{}

// PreRead is called before a Scan operation for fields that have the HashMeddler
func (b HashMeddler) PreRead(fieldAddr interface{}) (scanTarget interface{}, err error) {
	// give a pointer to a byte buffer to grab the raw data
	return new(string), nil
}

// PostRead is called after a Scan operation for fields that have the HashMeddler
func (b HashMeddler) PostRead(fieldPtr, scanTarget interface{}) error {
	ptr, ok := scanTarget.(*string)
	if !ok {
		return errors.New("scanTarget is not *string")
	}
	if ptr == nil {
		return fmt.Errorf("HashMeddler.PostRead: nil pointer")
	}
	field, ok := fieldPtr.(*common.Hash)
	if !ok {
		return errors.New("fieldPtr is not common.Hash")
	}
	*field = common.HexToHash(*ptr)
	return nil
}

// PreWrite is called before an Insert or Update operation for fields that have the HashMeddler
func (b HashMeddler) PreWrite(fieldPtr interface{}) (saveValue interface{}, err error) {
	field, ok := fieldPtr.(common.Hash)
	if !ok {
		return nil, errors.New("fieldPtr is not common.Hash")
	}
	return field.Hex(), nil
}

// UniversalAddressMeddler stores a 32 byte universal address as a 0x prefixed hex string
type UniversalAddressMeddler struct{}

// PreRead is called before a Scan operation for fields that have the UniversalAddressMeddler
func (b UniversalAddressMeddler) PreRead(fieldAddr interface{}) (scanTarget interface{}, err error) {
	return new(string), nil
}

// PostRead is called after a Scan operation for fields that have the UniversalAddressMeddler
func (b UniversalAddressMeddler) PostRead(fieldPtr, scanTarget interface{}) error {
	ptr, ok := scanTarget.(*string)
	if !ok {
		return errors.New("scanTarget is not *string")
	}
	if ptr == nil {
		return errors.New("UniversalAddressMeddler.PostRead: nil pointer")
	}
	field, ok := fieldPtr.(*messages.UniversalAddress)
	if !ok {
		return errors.New("fieldPtr is not messages.UniversalAddress")
	}
	addr, err := messages.HexToUniversalAddress(*ptr)
	if err != nil {
		return err
	}
	*field = addr
	return nil
}

// PreWrite is called before an Insert or Update operation for fields that have the UniversalAddressMeddler
func (b UniversalAddressMeddler) PreWrite(fieldPtr interface{}) (saveValue interface{}, err error) {
	field, ok := fieldPtr.(messages.UniversalAddress)
	if !ok {
		return nil, errors.New("fieldPtr is not messages.UniversalAddress")
	}
	return field.Hex(), nil
}

// Uint64Meddler stores an uint64 as a decimal string, sqlite integers are signed
type Uint64Meddler struct{}

// PreRead is called before a Scan operation for fields that have the Uint64Meddler
func (b Uint64Meddler) PreRead(fieldAddr interface{}) (scanTarget interface{}, err error) {
	return new(string), nil
}

// PostRead is called after a Scan operation for fields that have the Uint64Meddler
func (b Uint64Meddler) PostRead(fieldPtr, scanTarget interface{}) error {
	ptr, ok := scanTarget.(*string)
	if !ok {
		return errors.New("scanTarget is not *string")
	}
	if ptr == nil {
		return errors.New("Uint64Meddler.PostRead: nil pointer")
	}
	field, ok := fieldPtr.(*uint64)
	if !ok {
		return errors.New("fieldPtr is not *uint64")
	}
	v, err := strconv.ParseUint(*ptr, 10, 64) //nolint:mnd
	if err != nil {
		return fmt.Errorf("Uint64Meddler.PostRead: %w", err)
	}
	*field = v
	return nil
}

// PreWrite is called before an Insert or Update operation for fields that have the Uint64Meddler
func (b Uint64Meddler) PreWrite(fieldPtr interface{}) (saveValue interface{}, err error) {
	field, ok := fieldPtr.(uint64)
	if !ok {
		return nil, errors.New("fieldPtr is not uint64")
	}
	return strconv.FormatUint(field, 10), nil //nolint:mnd
}

// Uint256Meddler encodes or decodes the field value to or from a decimal string
type Uint256Meddler struct{}

// PreRead is called before a Scan operation for fields that have the Uint256Meddler
func (b Uint256Meddler) PreRead(fieldAddr interface{}) (scanTarget interface{}, err error) {
	return new(string), nil
}

// PostRead is called after a Scan operation for fields that have the Uint256Meddler
func (b Uint256Meddler) PostRead(fieldPtr, scanTarget interface{}) error {
	ptr, ok := scanTarget.(*string)
	if !ok {
		return errors.New("scanTarget is not *string")
	}
	if ptr == nil {
		return errors.New("Uint256Meddler.PostRead: nil pointer")
	}
	field, ok := fieldPtr.(**uint256.Int)
	if !ok {
		return errors.New("fieldPtr is not *uint256.Int")
	}
	v, err := uint256.FromDecimal(*ptr)
	if err != nil {
		return fmt.Errorf("uint256.FromDecimal failed on \"%v\": %w", *ptr, err)
	}
	*field = v
	return nil
}

// PreWrite is called before an Insert or Update operation for fields that have the Uint256Meddler
func (b Uint256Meddler) PreWrite(fieldPtr interface{}) (saveValue interface{}, err error) {
	field, ok := fieldPtr.(*uint256.Int)
	if !ok {
		return nil, errors.New("fieldPtr is not *uint256.Int")
	}
	if field == nil {
		return "0", nil
	}
	return field.Dec(), nil
}
