package shape

// OriginKind discriminates the two Hyperdrive origin shapes.
type OriginKind string

const (
	OriginKindStandard OriginKind = "standard"
	OriginKindAccess   OriginKind = "access"
)

// Origin is the tagged variant sent as the Hyperdrive origin object.
// Standard origins carry a port; Access origins carry the client
// credentials and no port.
type Origin struct {
	Kind               OriginKind
	Host               string
	Database           string
	User               string
	Password           string
	Scheme             string
	Port               int64
	AccessClientID     string
	AccessClientSecret string
}

// OriginInput is the full set of caller-supplied origin fields.
type OriginInput struct {
	OriginType         string
	Host               string
	Database           string
	User               string
	Password           string
	Scheme             string
	Port               int64
	AccessClientID     string
	AccessClientSecret string
}

// BuildOrigin picks the origin shape from the caller-supplied fields.
// The Access shape is produced only when the caller asked for it AND both
// credential fields are non-empty; any other combination silently falls
// back to the Standard shape. The upstream API owns all further
// validation (host syntax, port range, scheme membership).
func BuildOrigin(in OriginInput) Origin {
	if in.OriginType == "access" && in.AccessClientID != "" && in.AccessClientSecret != "" {
		return Origin{
			Kind:               OriginKindAccess,
			Host:               in.Host,
			Database:           in.Database,
			User:               in.User,
			Password:           in.Password,
			Scheme:             in.Scheme,
			AccessClientID:     in.AccessClientID,
			AccessClientSecret: in.AccessClientSecret,
		}
	}
	return Origin{
		Kind:     OriginKindStandard,
		Host:     in.Host,
		Database: in.Database,
		User:     in.User,
		Password: in.Password,
		Scheme:   in.Scheme,
		Port:     in.Port,
	}
}

// CachingPolicy mirrors the optional Hyperdrive caching object. Nil
// pointer fields are omitted from the outgoing request rather than
// defaulted locally.
type CachingPolicy struct {
	Disabled             *bool
	MaxAge               *int64
	StaleWhileRevalidate *int64
}

// BuildCaching returns nil when no caching field was supplied, so the
// caching object is left out of the request entirely and upstream
// defaults apply.
func BuildCaching(disabled *bool, maxAge, staleWhileRevalidate *int64) *CachingPolicy {
	if disabled == nil && maxAge == nil && staleWhileRevalidate == nil {
		return nil
	}
	return &CachingPolicy{
		Disabled:             disabled,
		MaxAge:               maxAge,
		StaleWhileRevalidate: staleWhileRevalidate,
	}
}
