package content

// Recognized page identifiers. The navigation set is fixed; only these
// two pages ever exist.
const (
	PageDetails  = "details"
	PageContacts = "contacts"
)

// NavigationPage is an admin-editable content page rendered with the
// line-oriented markup understood by Render.
type NavigationPage struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	IsEditable bool   `json:"isEditable"`
}

// Defaults returns the built-in pages used before the first save and
// after a reset.
func Defaults() []NavigationPage {
	return []NavigationPage{
		{
			ID:    PageDetails,
			Title: "Детали квартир",
			Content: `# Детали квартир

Добро пожаловать в раздел детальной информации о наших квартирах!

## Что вы найдете здесь:

### 📋 Подробные характеристики
- Полные технические характеристики каждой квартиры
- Планировки и размеры комнат
- Состояние ремонта и мебелировка

### 📸 Фотогалереи
- Профессиональные фотографии всех комнат
- Виды из окон и балконов
- Детали интерьера и удобств

### 🏢 Информация о здании
- Год постройки и материалы
- Инфраструктура района
- Транспортная доступность

### 📍 Расположение
- Интерактивные карты
- Ближайшие объекты инфраструктуры
- Остановки общественного транспорта

Выберите квартиру на главной странице, чтобы увидеть все детали!`,
			IsEditable: true,
		},
		{
			ID:    PageContacts,
			Title: "Контактная информация",
			Content: `# Свяжитесь с нами

Мы всегда готовы помочь вам найти идеальную квартиру!

## 📞 Телефоны
- **Основной:** +7 (495) 123-45-67
- **WhatsApp:** +7 (985) 123-45-67
- **Время работы:** Пн-Вс, 9:00-20:00

## 📧 Электронная почта
- **Общие вопросы:** info@rental-hub.ru
- **Бронирование:** booking@rental-hub.ru
- **Поддержка:** support@rental-hub.ru

## 🏢 Офис
**Адрес:** г. Санкт-Петербург, Невский проспект, 28, офис 15
**Метро:** Невский проспект (3 минуты пешком)
**Время работы:** Пн-Пт 10:00-19:00, Сб 11:00-16:00

## 💬 Онлайн-консультации
- **Telegram:** @rental_hub_spb
- **Онлайн-чат:** Доступен на сайте 24/7
- **Видеосвязь:** По предварительной записи

## 🚗 Как добраться
### На метро:
- Невский проспект (зеленая/синяя линия)
- Гостиный двор (зеленая линия)

### На автомобиле:
Парковка доступна во дворе дома (платная, 100₽/час)

Мы ждем вас!`,
			IsEditable: true,
		},
	}
}
