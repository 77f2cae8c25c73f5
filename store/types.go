package store

import "github.com/iov-one/ownable"

// Move references for all storage types into this package
// for shorter names everywhere

type KVStore = ownable.KVStore
type SetDeleter = ownable.SetDeleter
type Batch = ownable.Batch
type CacheableKVStore = ownable.CacheableKVStore
type KVCacheWrap = ownable.KVCacheWrap
