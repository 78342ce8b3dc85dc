package redis

// Cache key layout. Keep every key format in one place so invalidation
// cannot drift from population.
const (
	KeyProductList     = "catalog:products"
	KeyProductFeatured = "catalog:products:featured"
)
