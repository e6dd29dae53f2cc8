package cache

// KeyProducts prefixes every cached product entry, keyed by product id.
const KeyProducts = "products:"
