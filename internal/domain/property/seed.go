package property

// Seed returns the default St. Petersburg catalog used when no saved
// data exists yet. Coordinates are real city locations so the map view
// works out of the box.
func Seed() []Property {
	return []Property{
		{
			ID:       "1",
			Title:    "Роскошный Лофт в Центре",
			Price:    85000,
			Bedrooms: "2", Bathrooms: "2",
			Area:   120,
			Status: StatusAvailable,
			Images: []string{
				"https://via.placeholder.com/800x600/4F46E5/FFFFFF?text=Гостиная",
				"https://via.placeholder.com/800x600/7C3AED/FFFFFF?text=Спальня",
				"https://via.placeholder.com/800x600/DC2626/FFFFFF?text=Кухня",
			},
			Amenities:   []string{"Кондиционер", "Балкон", "Парковка", "Интернет", "Безопасность"},
			Address:     "Невский проспект, 28, Санкт-Петербург",
			Description: "Элегантный лофт в самом сердце Санкт-Петербурга с панорамными окнами и современным дизайном. Идеально подходит для молодых профессионалов.",
			Lat:         59.9342, Lng: 30.335,
		},
		{
			ID:       "2",
			Title:    "Современные Семейные Апартаменты",
			Price:    120000,
			Bedrooms: "3", Bathrooms: "2.5",
			Area:   160,
			Status: StatusLimited,
			Images: []string{
				"https://via.placeholder.com/800x600/059669/FFFFFF?text=Детская",
				"https://via.placeholder.com/800x600/EA580C/FFFFFF?text=Зал",
				"https://via.placeholder.com/800x600/7C2D12/FFFFFF?text=Ванная",
			},
			Amenities:   []string{"Детская площадка", "Спортзал", "Консьерж", "Прачечная", "Сад"},
			Address:     "ул. Рубинштейна, 15, Санкт-Петербург",
			Description: "Просторные семейные апартаменты в историческом центре города. Отлично подходят для семей с детьми.",
			Lat:         59.928, Lng: 30.3515,
		},
		{
			ID:       "3",
			Title:    "Уютная Студия у Эрмитажа",
			Price:    55000,
			Bedrooms: "Студия", Bathrooms: "1",
			Area:   75,
			Status: StatusAvailable,
			Images: []string{
				"https://via.placeholder.com/800x600/0891B2/FFFFFF?text=Студия",
				"https://via.placeholder.com/800x600/BE185D/FFFFFF?text=Балкон",
				"https://via.placeholder.com/800x600/15803D/FFFFFF?text=Прихожая",
			},
			Amenities:   []string{"Мебель", "Кухня", "WiFi", "Близко к метро", "Магазины рядом"},
			Address:     "Дворцовая набережная, 4, Санкт-Петербург",
			Description: "Компактная и стильная студия рядом с Эрмитажем. Идеально для краткосрочной аренды и туристов.",
			Lat:         59.9398, Lng: 30.3146,
		},
		{
			ID:       "4",
			Title:    "Элитные Апартаменты на Васильевском",
			Price:    150000,
			Bedrooms: "2", Bathrooms: "2",
			Area:   140,
			Status: StatusBooked,
			Images: []string{
				"https://via.placeholder.com/800x600/6366F1/FFFFFF?text=Терраса",
				"https://via.placeholder.com/800x600/EF4444/FFFFFF?text=Камин",
				"https://via.placeholder.com/800x600/8B5CF6/FFFFFF?text=Джакузи",
			},
			Amenities:   []string{"Терраса", "Камин", "Джакузи", "Консьерж", "Видеонаблюдение", "Парковка"},
			Address:     "Университетская набережная, 17, Санкт-Петербург",
			Description: "Роскошные апартаменты на Васильевском острове с видом на Неву. Премиум-класс с эксклюзивными удобствами.",
			Lat:         59.942, Lng: 30.2991,
		},
	}
}
