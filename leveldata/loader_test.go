package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/bushido-blazer/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallArena = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="20" height="10" tilewidth="10" tileheight="10" infinite="0" nextlayerid="2" nextobjectid="4">
 <objectgroup id="1" name="arena">
  <object id="1" name="bounds" x="50" y="25" width="100" height="50"/>
  <object id="2" name="post" x="160" y="0" width="10" height="10">
   <properties>
    <property name="kind" value="spark"/>
   </properties>
  </object>
  <object id="3" name="post" x="0" y="0" width="10" height="10">
   <properties>
    <property name="kind" value="spark"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

const noBounds = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="20" height="10" tilewidth="10" tileheight="10" infinite="0" nextlayerid="2" nextobjectid="2">
 <objectgroup id="1" name="arena">
  <object id="1" name="decor" x="0" y="0" width="10" height="10"/>
 </objectgroup>
</map>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"arenas/small.tmx": {Data: []byte(smallArena)},
		"broken/empty.tmx": {Data: []byte(noBounds)},
	}
}

func TestLoadArenaCentersGeometry(t *testing.T) {
	arena, err := LoadArena(testFS(), "arenas/small.tmx")
	require.NoError(t, err)

	assert.Equal(t, "small", arena.Name)
	assert.Equal(t, gamemath.Rect{Min: gamemath.V(-100, -50), Max: gamemath.V(100, 50)}, arena.Outer)
	assert.Equal(t, gamemath.Rect{Min: gamemath.V(-50, -25), Max: gamemath.V(50, 25)}, arena.Inner)

	require.Len(t, arena.SparkBoxes, 2)
	assert.Equal(t, gamemath.V(-100, -50), arena.SparkBoxes[0].Min, "sorted left to right")
	assert.Equal(t, gamemath.V(60, -50), arena.SparkBoxes[1].Min)
}

func TestLoadArenaRequiresBounds(t *testing.T) {
	_, err := LoadArena(testFS(), "broken/empty.tmx")
	assert.Error(t, err)
}

func TestLoadArenaMissingFile(t *testing.T) {
	_, err := LoadArena(testFS(), "arenas/missing.tmx")
	assert.Error(t, err)
}

func TestLoadAllArenas(t *testing.T) {
	arenas, names, err := LoadAllArenas(testFS(), "arenas")
	require.NoError(t, err)
	assert.Equal(t, []string{"small"}, names)
	assert.Contains(t, arenas, "small")

	_, _, err = LoadAllArenas(testFS(), "nothing")
	assert.Error(t, err)
}

func TestEdgesTraceInnerBounds(t *testing.T) {
	arena := Fallback(200, 100, 400, 200)
	edges := arena.Edges()
	require.Len(t, edges, 4)

	assert.Equal(t, -50.0, edges[0].Min.Y)
	assert.Equal(t, -50.0, edges[0].Max.Y)
	assert.Equal(t, 50.0, edges[1].Min.Y)
	assert.Equal(t, -100.0, edges[2].Min.X)
	assert.Equal(t, -100.0, edges[2].Max.X)
	assert.Equal(t, 100.0, edges[3].Min.X)
	assert.Equal(t, gamemath.V(-200, -100), arena.Outer.Min)
}
