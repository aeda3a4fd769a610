package seed

// 初始数据：西语文学目录
var (
	authors = []string{
		"Gabriel García Márquez",
		"Jorge Luis Borges",
		"Isabel Allende",
		"Julio Cortázar",
		"Mario Vargas Llosa",
		"Miguel de Cervantes",
	}

	editorials = []string{
		"Sudamericana",
		"Emecé",
		"Plaza & Janés",
		"Alfaguara",
		"Cátedra",
	}

	genres = []string{
		"Novela",
		"Cuento",
		"Realismo mágico",
		"Clásico",
	}
)

type bookSeed struct {
	Title       string
	Description string
	Price       string
	IsAvailable bool
	Author      string
	Editorial   string
	Genre       string
}

var books = []bookSeed{
	{"Cien años de soledad", "La historia de la familia Buendía en Macondo.", "19.90", true, "Gabriel García Márquez", "Sudamericana", "Realismo mágico"},
	{"El amor en los tiempos del cólera", "Florentino Ariza espera más de medio siglo.", "17.50", true, "Gabriel García Márquez", "Sudamericana", "Novela"},
	{"Ficciones", "Laberintos, bibliotecas y espejos.", "12.00", true, "Jorge Luis Borges", "Emecé", "Cuento"},
	{"El Aleph", "Un punto que contiene todos los puntos.", "11.25", false, "Jorge Luis Borges", "Emecé", "Cuento"},
	{"La casa de los espíritus", "Cuatro generaciones de la familia Trueba.", "16.80", true, "Isabel Allende", "Plaza & Janés", "Realismo mágico"},
	{"Rayuela", "Una novela que se puede leer en varios órdenes.", "18.40", true, "Julio Cortázar", "Sudamericana", "Novela"},
	{"La ciudad y los perros", "La vida en el Colegio Militar Leoncio Prado.", "15.00", false, "Mario Vargas Llosa", "Alfaguara", "Novela"},
	{"Don Quijote de la Mancha", "El ingenioso hidalgo y su escudero.", "24.95", true, "Miguel de Cervantes", "Cátedra", "Clásico"},
}
