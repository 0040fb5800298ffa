package user

import (
	"fmt"
	"math/rand"
)

var firstNames = []string{
	"Ana", "Bruno", "Carla", "Diego", "Elena", "Felipe", "Gabriela",
	"Hugo", "Ines", "Joao", "Karen", "Lucas", "Maria", "Nuno",
	"Olivia", "Paulo", "Rita", "Sergio", "Tania", "Victor",
}

var lastNames = []string{
	"Almeida", "Barbosa", "Costa", "Dias", "Ferreira", "Gomes",
	"Lima", "Martins", "Nunes", "Oliveira", "Pereira", "Ribeiro",
	"Santos", "Silva", "Sousa", "Teixeira",
}

func randomName() string {
	return fmt.Sprintf("%s %s",
		firstNames[rand.Intn(len(firstNames))],
		lastNames[rand.Intn(len(lastNames))])
}
