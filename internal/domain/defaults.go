package domain

// DefaultQuotes returns the built-in quotes seeded when the store is empty and
// the remote feed cannot provide any. Each call returns a fresh slice.
func DefaultQuotes() []Quote {
	return []Quote{
		{Text: "El único modo de hacer un gran trabajo es amar lo que haces.", Author: "Steve Jobs", Category: "Motivación"},
		{Text: "La vida es lo que te sucede mientras estás ocupado haciendo otros planes.", Author: "John Lennon", Category: "Vida"},
		{Text: "El futuro pertenece a aquellos que creen en la belleza de sus sueños.", Author: "Eleanor Roosevelt", Category: "Sueños"},
		{Text: "No es la especie más fuerte la que sobrevive, sino la que mejor se adapta al cambio.", Author: "Charles Darwin", Category: "Perseverancia"},
		{Text: "La educación es el arma más poderosa que puedes usar para cambiar el mundo.", Author: "Nelson Mandela", Category: "Educación"},
		{Text: "La creatividad es la inteligencia divirtiéndose.", Author: "Albert Einstein", Category: "Creatividad"},
		{Text: "El éxito es ir de fracaso en fracaso sin perder el entusiasmo.", Author: "Winston Churchill", Category: "Éxito"},
		{Text: "Sé tú mismo; todos los demás ya están ocupados.", Author: "Oscar Wilde", Category: "Autenticidad"},
		{Text: "La felicidad no es algo hecho. Viene de tus propias acciones.", Author: "Dalai Lama", Category: "Felicidad"},
		{Text: "La sabiduría comienza en la reflexión.", Author: "Sócrates", Category: "Sabiduría"},
		{Text: "Cree en ti mismo y todo será posible.", Author: "Anónimo", Category: "Confianza"},
		{Text: "El progreso es imposible sin cambio.", Author: "George Bernard Shaw", Category: "Progreso"},
		{Text: "La excelencia no es una habilidad, es una actitud.", Author: "Ralph Marston", Category: "Excelencia"},
		{Text: "Un viaje de mil millas comienza con un solo paso.", Author: "Lao Tzu", Category: "Acción"},
		{Text: "Lo que no te mata, te hace más fuerte.", Author: "Friedrich Nietzsche", Category: "Perseverancia"},
		{Text: "La manera de empezar es dejar de hablar y empezar a hacer.", Author: "Walt Disney", Category: "Acción"},
		{Text: "La imaginación es más importante que el conocimiento.", Author: "Albert Einstein", Category: "Creatividad"},
		{Text: "Nunca es tarde para ser lo que podrías haber sido.", Author: "George Eliot", Category: "Sueños"},
		{Text: "El fracaso es simplemente la oportunidad de comenzar de nuevo de manera más inteligente.", Author: "Henry Ford", Category: "Perseverancia"},
		{Text: "La vida es 10% lo que te sucede y 90% cómo reaccionas a ello.", Author: "Charles R. Swindoll", Category: "Vida"},
	}
}
