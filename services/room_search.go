package services

import (
	"sort"
	"strings"

	"reservas/models"
	"reservas/utils"

	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// umbral de similitud para aceptar un nombre con errores de tipeo
const similarityThreshold = 0.6

type scoredRoom struct {
	room  models.Room
	score int
}

// SearchRooms ordena las salas por parecido con query y descarta las que no se parecen
func SearchRooms(query string, rooms []models.Room) []models.Room {
	q := utils.NormalizeText(query)
	if q == "" {
		return rooms
	}

	names := make([]string, 0, len(rooms))
	for i := range rooms {
		if n := utils.NormalizeText(rooms[i].Name); n != "" {
			names = append(names, n)
		}
	}
	var closest string
	if len(names) > 0 {
		closest = closestmatch.New(names, []int{2, 3}).Closest(q)
	}

	var scored []scoredRoom
	for i := range rooms {
		if score := roomScore(q, closest, rooms[i]); score > 0 {
			scored = append(scored, scoredRoom{room: rooms[i], score: score})
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	out := make([]models.Room, 0, len(scored))
	for _, s := range scored {
		out = append(out, s.room)
	}
	return out
}

func roomScore(q, closest string, room models.Room) int {
	name := utils.NormalizeText(room.Name)
	score := 0
	if strings.Contains(name, q) {
		score += 10
	}
	if similarity(q, name) >= similarityThreshold {
		score += 5
	}
	if closest != "" && closest == name && similarity(q, name) > 0.3 {
		score += 2
	}
	if strings.Contains(utils.NormalizeText(room.Location), q) {
		score += 3
	}
	if strings.Contains(utils.NormalizeText(room.Description), q) {
		score++
	}
	return score
}

// similarity es 1 - distancia/longitud máxima
func similarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/float64(maxLen)
}
