package commands

import "github.com/m04kA/SMC-TourService/internal/domain"

type countryData struct {
	name   string
	cities []string
}

var demoCountries = []countryData{
	{"Италия", []string{"Рим", "Венеция", "Флоренция", "Милан", "Неаполь"}},
	{"Франция", []string{"Париж", "Ницца", "Марсель", "Лион", "Бордо"}},
	{"Таиланд", []string{"Бангкок", "Пхукет", "Самуи", "Чиангмай", "Паттайя"}},
	{"Турция", []string{"Анталия", "Стамбул", "Кемер", "Аланья", "Бодрум"}},
	{"Египет", []string{"Шарм-эль-Шейх", "Хургада", "Каир", "Луксор", "Марса-Алам"}},
	{"Греция", []string{"Афины", "Салоники", "Родос", "Крит", "Корфу"}},
	{"Испания", []string{"Барселона", "Мадрид", "Валенсия", "Севилья", "Малага"}},
	{"ОАЭ", []string{"Дубай", "Абу-Даби"}},
	{"Мальдивы", []string{"Мале"}},
	{"Доминикана", []string{"Пунта-Кана"}},
}

type userData struct {
	username string
	role     domain.Role
}

var demoUsers = []userData{
	{"admin", domain.RoleAdmin},
	{"agent1", domain.RoleTourAgent},
	{"manager1", domain.RoleManager},
	{"operator1", domain.RoleOperator},
	{"client1", domain.RoleClient},
	{"client2", domain.RoleClient},
	{"client3", domain.RoleClient},
	{"client4", domain.RoleClient},
	{"client5", domain.RoleClient},
	{"client6", domain.RoleClient},
}

var demoHotelPrefixes = []string{"Grand", "Royal", "Palace", "Sunrise", "Blue Lagoon", "Garden"}

var demoReviewTexts = []string{
	"Отличный отдых, все понравилось!",
	"Гид был очень внимательным, программа насыщенная.",
	"Отель хороший, но далеко от центра.",
	"Цена соответствует качеству.",
	"Обязательно поедем еще раз.",
	"",
}

var demoPromotions = []struct {
	title       string
	description string
	startOffset int // дней от сегодня
	endOffset   int
}{
	{"Раннее бронирование", "Скидка 15% при бронировании за 60 дней", -10, 50},
	{"Горящие туры", "Вылеты в ближайшие две недели", -3, 14},
	{"Осенние каникулы", "Семейные туры со скидкой", 0, 30},
	{"Летний сезон", "Акция завершилась", -120, -30},
}
