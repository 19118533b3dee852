/*
Package contracts provides access to compiled Subscast contracts.

Compiled contracts are laid out as the sources are: each contract directory
holds contract.nef and manifest.json produced by the neo-go compiler.
*/
package contracts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/nspcc-dev/neo-go/pkg/io"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
)

const (
	billingDir = "billing"
	creatorDir = "creator"

	nefName      = "contract.nef"
	manifestName = "manifest.json"
)

// Contract groups information about compiled Neo contract.
type Contract struct {
	NEF      nef.File
	Manifest manifest.Manifest
}

// Set groups all Subscast contracts.
type Set struct {
	Billing Contract
	// Creator depends on Billing, so it is deployed after it.
	Creator Contract
}

var (
	errInvalidNEF      = errors.New("invalid NEF")
	errInvalidManifest = errors.New("invalid manifest")
)

// Read reads compiled Subscast contracts from the given file system, e.g.
// os.DirFS("contracts").
func Read(fsys fs.FS) (Set, error) {
	var (
		s   Set
		err error
	)

	s.Billing, err = readContractFromDir(fsys, billingDir)
	if err != nil {
		return s, fmt.Errorf("read contract %s: %w", billingDir, err)
	}

	s.Creator, err = readContractFromDir(fsys, creatorDir)
	if err != nil {
		return s, fmt.Errorf("read contract %s: %w", creatorDir, err)
	}

	return s, nil
}

func readContractFromDir(fsys fs.FS, dir string) (Contract, error) {
	var c Contract

	// fs.FS paths use "/" even on Windows, so filepath.Join() is not
	// applicable.
	fNEF, err := fsys.Open(dir + "/" + nefName)
	if err != nil {
		return c, fmt.Errorf("open NEF: %w", err)
	}
	defer fNEF.Close()

	fManifest, err := fsys.Open(dir + "/" + manifestName)
	if err != nil {
		return c, fmt.Errorf("open manifest: %w", err)
	}
	defer fManifest.Close()

	bReader := io.NewBinReaderFromIO(fNEF)
	c.NEF.DecodeBinary(bReader)
	if bReader.Err != nil {
		return c, fmt.Errorf("%w: %w", errInvalidNEF, bReader.Err)
	}

	err = json.NewDecoder(fManifest).Decode(&c.Manifest)
	if err != nil {
		return c, fmt.Errorf("%w: %w", errInvalidManifest, err)
	}

	return c, nil
}
