package contracts

import (
	"encoding/json"
	"testing"
	"testing/fstest"

	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/stretchr/testify/require"
)

func validFS(t *testing.T) fstest.MapFS {
	_fs := fstest.MapFS{}

	for _, dir := range []string{billingDir, creatorDir} {
		_, validNEF := anyValidNEF(t, []byte(dir))
		_, validManifest := anyValidManifest(t, dir)

		_fs[dir+"/"+nefName] = &fstest.MapFile{Data: validNEF}
		_fs[dir+"/"+manifestName] = &fstest.MapFile{Data: validManifest}
	}

	return _fs
}

func TestRead(t *testing.T) {
	s, err := Read(validFS(t))
	require.NoError(t, err)

	require.Equal(t, billingDir, s.Billing.Manifest.Name)
	require.Equal(t, creatorDir, s.Creator.Manifest.Name)
	require.Equal(t, []byte(billingDir), s.Billing.NEF.Script)
	require.Equal(t, []byte(creatorDir), s.Creator.NEF.Script)
}

func TestReadMissingFiles(t *testing.T) {
	_fs := fstest.MapFS{}

	// Missing NEF.
	_, err := Read(_fs)
	require.Error(t, err)

	// Missing manifest.
	_fs[billingDir+"/"+nefName] = &fstest.MapFile{}
	_, err = Read(_fs)
	require.Error(t, err)

	// Missing Creator contract.
	_fs = validFS(t)
	delete(_fs, creatorDir+"/"+nefName)
	_, err = Read(_fs)
	require.ErrorContains(t, err, creatorDir)
}

func TestReadInvalidFormat(t *testing.T) {
	var (
		_fs          = validFS(t)
		nefPath      = billingDir + "/" + nefName
		manifestPath = billingDir + "/" + manifestName
	)

	_, validNEF := anyValidNEF(t, []byte{0x40})
	_, validManifest := anyValidManifest(t, "zero")

	_fs[nefPath] = &fstest.MapFile{Data: []byte("not a NEF")}
	_fs[manifestPath] = &fstest.MapFile{Data: validManifest}

	_, err := Read(_fs)
	require.ErrorIs(t, err, errInvalidNEF)

	_fs[nefPath] = &fstest.MapFile{Data: validNEF}
	_fs[manifestPath] = &fstest.MapFile{Data: []byte("not a manifest")}

	_, err = Read(_fs)
	require.ErrorIs(t, err, errInvalidManifest)
}

func anyValidNEF(tb testing.TB, script []byte) (nef.File, []byte) {
	_nef, err := nef.NewFile(script)
	require.NoError(tb, err)

	bNEF, err := _nef.Bytes()
	require.NoError(tb, err)

	return *_nef, bNEF
}

func anyValidManifest(tb testing.TB, name string) (manifest.Manifest, []byte) {
	_manifest := manifest.NewManifest(name)

	jManifest, err := json.Marshal(_manifest)
	require.NoError(tb, err)

	return *_manifest, jManifest
}
