package badgerstore

import (
	"fmt"

	"github.com/guddy2005/real-estate-app/core"
)

// Key prefixes for different data types
const (
	propertyRecordPrefix = "proprec"
	regionRecordPrefix   = "regrec"
	regionKeysKey        = "regkeys"
	profileRecordPrefix  = "profrec"
)

// makePropertyKey generates a key for a property record by content ID.
func makePropertyKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", propertyRecordPrefix, id))
}

// makeRegionKey generates a key for a region record by catalog key.
func makeRegionKey(key string) []byte {
	return []byte(regionRecordPrefix + ":" + key)
}

// makeProfileKey generates a key for a user profile record.
func makeProfileKey(id string) []byte {
	return []byte(profileRecordPrefix + ":" + id)
}
