package dto

// Response es el envelope uniforme de todas las operaciones GraphQL.
// Los fallos de negocio viajan como status:false + statusCode:400 dentro del
// envelope (HTTP 200), nunca como error de transporte.
type Response struct {
	Status     bool    `json:"status"`
	StatusCode int     `json:"statusCode"`
	Message    string  `json:"message"`
	Data       Payload `json:"data"`
}

// OK construye un envelope de éxito con el payload indicado.
func OK(message string, data Payload) Response {
	return Response{Status: true, StatusCode: 200, Message: message, Data: data}
}

// Fail construye un envelope de fallo (400) con payload vacío.
func Fail(message string) Response {
	return Response{Status: false, StatusCode: 400, Message: message, Data: Empty()}
}

// PayloadKind discrimina la variante activa del union Payload. El tipo
// concreto se selecciona siempre por este tag, nunca inspeccionando la forma
// del objeto.
type PayloadKind int

// Variantes del union de datos.
const (
	PayloadEmpty PayloadKind = iota
	PayloadOneUser
	PayloadManyUsers
	PayloadOneAdmin
	PayloadManyAdmins
	PayloadOnePackage
	PayloadManyPackages
)

// Payload es el union etiquetado del campo data del envelope. Kind indica la
// variante activa; solo el campo correspondiente está poblado.
type Payload struct {
	Kind     PayloadKind    `json:"-"`
	User     *AccountData   `json:"user,omitempty"`
	Users    []*AccountData `json:"users,omitempty"`
	Admin    *AccountData   `json:"admin,omitempty"`
	Admins   []*AccountData `json:"admins,omitempty"`
	Package  *PackageData   `json:"package,omitempty"`
	Packages []*PackageData `json:"packages,omitempty"`
}

// Empty payload vacío ({} en la respuesta), usado en fallos y en deletes.
func Empty() Payload { return Payload{Kind: PayloadEmpty} }

// OneUser payload con una sola cuenta de usuario.
func OneUser(u *AccountData) Payload { return Payload{Kind: PayloadOneUser, User: u} }

// ManyUsers payload con una colección de usuarios.
func ManyUsers(us []*AccountData) Payload { return Payload{Kind: PayloadManyUsers, Users: us} }

// OneAdmin payload con una sola cuenta de admin.
func OneAdmin(a *AccountData) Payload { return Payload{Kind: PayloadOneAdmin, Admin: a} }

// ManyAdmins payload con una colección de admins.
func ManyAdmins(as []*AccountData) Payload { return Payload{Kind: PayloadManyAdmins, Admins: as} }

// OnePackage payload con un solo paquete.
func OnePackage(p *PackageData) Payload { return Payload{Kind: PayloadOnePackage, Package: p} }

// ManyPackages payload con una colección de paquetes.
func ManyPackages(ps []*PackageData) Payload {
	return Payload{Kind: PayloadManyPackages, Packages: ps}
}
