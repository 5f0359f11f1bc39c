package sqlite

import (
	"autoparts/internal/infra/persistence/model"

	"github.com/shopspring/decimal"
)

// seedUser is an account created with every fresh store.
type seedUser struct {
	Email    string
	Phone    string
	Password string
	Name     string
	Role     string
}

var seedUsers = []seedUser{
	{Email: "admin@autoparts.com", Phone: "+79991234567", Password: "admin123", Name: "Администратор", Role: "admin"},
	{Email: "user@example.com", Phone: "+79998765432", Password: "user123", Name: "Иван Иванов", Role: "user"},
}

// referenceCatalog returns the products every fresh store starts with. Rows are built anew on each call.
func referenceCatalog() []*model.ProductModel {
	return []*model.ProductModel{
		catalogItem("Масляный фильтр Mann", "MF-001", "Mann-Filter", 850, "Масляный фильтр для двигателей TSI/VW/Audi", "Фильтры", "03C115561B,03C115561,03C115561H", "VW Golf, Audi A3, Skoda Octavia"),
		catalogItem("Воздушный фильтр Bosch", "AF-002", "Bosch", 1200, "Воздушный фильтр салона с угольным элементом", "Фильтры", "1K0819653,1K0819653A,1K0819653B", "VW Polo, Skoda Rapid, Seat Ibiza"),
		catalogItem("Топливный фильтр Mahle", "FF-011", "Mahle", 950, "Топливный фильтр тонкой очистки", "Фильтры", "1K0201511,1K0201511A", "VW Golf, Passat, Jetta"),
		catalogItem("Салонный фильтр Valeo", "CF-012", "Valeo", 650, "Фильтр салона с активированным углем", "Фильтры", "1K0819653C,1K0819653D", "VW Polo, Skoda Fabia"),
		catalogItem("Тормозные колодки Brembo", "BK-003", "Brembo", 4500, "Передние тормозные колодки дисковые", "Тормозная система", "8V0615101,8V0615101A,8V0615101B", "Audi A4, VW Passat, Skoda Superb"),
		catalogItem("Тормозные диски TRW", "BD-013", "TRW", 6800, "Передние тормозные диски вентилируемые", "Тормозная система", "1K0615301,1K0615301A", "VW Golf, Audi A3"),
		catalogItem("Тормозная жидкость DOT4", "BF-014", "Bosch", 450, "Тормозная жидкость DOT4 1л", "Тормозная система", "Универсальная", "Все модели"),
		catalogItem("Тормозной шланг ATE", "BH-015", "ATE", 1200, "Передний тормозной шланг", "Тормозная система", "1K0611701,1K0611701A", "VW Polo, Skoda Fabia"),
		catalogItem("Свеча зажигания NGK", "SP-004", "NGK", 350, "Иридиевая свеча зажигания", "Система зажигания", "06H905611,06H905611A,06H905611B", "VW Tiguan, Skoda Kodiaq, Audi Q3"),
		catalogItem("Катушка зажигания Bosch", "IC-016", "Bosch", 3200, "Катушка зажигания индивидуальная", "Система зажигания", "06H905115,06H905115A", "VW Golf, Passat"),
		catalogItem("Свеча накаливания Beru", "GP-017", "Beru", 850, "Свеча накаливания для дизеля", "Система зажигания", "N10591607,N10591607A", "VW Golf, Passat TDI"),
		catalogItem("Аккумулятор Varta", "BAT-005", "Varta", 8500, "Свинцово-кислотный аккумулятор 60Ач", "Электрика", "000915105AC,000915105AD,000915105AE", "Все модели VAG"),
		catalogItem("Генератор Bosch", "GEN-010", "Bosch", 18500, "Генератор 140А с регулятором напряжения", "Электрика", "03C903023,03C903023A,03C903023B", "Audi Q5, VW Touareg, Porsche Cayenne"),
		catalogItem("Стартер Valeo", "ST-018", "Valeo", 12500, "Стартер редукторный 1.4кВт", "Электрика", "02T911023,02T911023A", "VW Golf, Passat"),
		catalogItem("Лампа H7 Osram", "BL-019", "Osram", 450, "Галогенная лампа H7 55W", "Электрика", "Универсальная", "Все модели"),
		catalogItem("Датчик кислорода Bosch", "O2-020", "Bosch", 3200, "Лямбда-зонд передний", "Электрика", "0258017025,0258017025A", "VW Golf, Passat, Audi A4"),
		catalogItem("ШРУС Lemforder", "CV-006", "Lemforder", 5200, "Наружный ШРУС с пыльником", "Ходовая часть", "1K0407271,1K0407271A,1K0407271B", "VW Golf, Audi A3, Seat Leon"),
		catalogItem("Амортизатор Sachs", "SH-009", "Sachs", 6800, "Передний амортизатор газомасляный", "Ходовая часть", "1K0413031,1K0413031A,1K0413031B", "VW Polo, Skoda Fabia, Seat Ibiza"),
		catalogItem("Стойка стабилизатора TRW", "SS-021", "TRW", 1200, "Стойка стабилизатора передняя", "Ходовая часть", "1K0411315,1K0411315A", "VW Golf, Passat"),
		catalogItem("Рычаг подвески Lemforder", "CA-022", "Lemforder", 4500, "Передний нижний рычаг", "Ходовая часть", "1K0407151,1K0407151A", "VW Golf, Audi A3"),
		catalogItem("Подшипник ступицы FAG", "HB-023", "FAG", 3200, "Подшипник ступицы передний", "Ходовая часть", "1K0407621,1K0407621A", "VW Golf, Passat"),
		catalogItem("Пыльник ШРУС Corteco", "CVB-024", "Corteco", 650, "Пыльник наружного ШРУС", "Ходовая часть", "1K0498101,1K0498101A", "VW Golf, Audi A3"),
		catalogItem("Сцепление LUK", "CL-007", "LUK", 12500, "Комплект сцепления (корзина+диск+выжимной)", "Трансмиссия", "02T141033,02T141033A,02T141033B", "VW Jetta, Skoda Octavia, Audi A4"),
		catalogItem("Масло трансмиссионное Motul", "TM-025", "Motul", 1200, "Масло трансмиссионное 75W-90 1л", "Трансмиссия", "Универсальное", "Все модели"),
		catalogItem("Подшипник выжимной Valeo", "TB-026", "Valeo", 1800, "Выжимной подшипник сцепления", "Трансмиссия", "02T141165,02T141165A", "VW Golf, Passat"),
		catalogItem("Ремень ГРМ Contitech", "TB-008", "Contitech", 3200, "Ремень ГРМ с роликами", "Двигатель", "06B109119,06B109119A,06B109119B", "VW Passat, Audi A6, Skoda Superb"),
		catalogItem("Ролик натяжителя ГРМ INA", "TB-027", "INA", 2500, "Ролик натяжителя ремня ГРМ", "Двигатель", "06B109244,06B109244A", "VW Passat, Audi A6"),
		catalogItem("Помпа водяная Gates", "WP-028", "Gates", 4500, "Водяной насос с прокладкой", "Двигатель", "06H121026,06H121026A", "VW Golf, Passat TSI"),
		catalogItem("Термостат Wahler", "TH-029", "Wahler", 1800, "Термостат двигателя 87°C", "Двигатель", "06H121113,06H121113A", "VW Golf, Passat"),
		catalogItem("Ремень приводной Gates", "AB-030", "Gates", 1200, "Ремень привода навесного оборудования", "Двигатель", "6PK1193,6PK1195", "VW Golf, Passat"),
		catalogItem("Масло моторное Castrol", "EO-031", "Castrol", 1800, "Моторное масло 5W-30 4л", "Двигатель", "Универсальное", "Все модели"),
		catalogItem("Прокладка ГБЦ Elring", "HG-032", "Elring", 3200, "Прокладка головки блока цилиндров", "Двигатель", "06H103383,06H103383A", "VW Golf, Passat 1.8T"),
		catalogItem("Радиатор охлаждения Nissens", "RAD-033", "Nissens", 8500, "Радиатор системы охлаждения", "Система охлаждения", "7M0121251,7M0121251A", "VW Golf, Passat"),
		catalogItem("Расширительный бачок Febi", "ET-034", "Febi", 1200, "Бачок расширительный с крышкой", "Система охлаждения", "1K0121407,1K0121407A", "VW Golf, Polo"),
		catalogItem("Патрубок охлаждения Gates", "CH-035", "Gates", 650, "Патрубок системы охлаждения верхний", "Система охлаждения", "1K0121107,1K0121107A", "VW Golf, Passat"),
		catalogItem("Фара передняя Hella", "HL-036", "Hella", 12500, "Фара передняя левая с линзой", "Кузов", "1K1941001,1K1941001A", "VW Golf"),
		catalogItem("Бампер передний", "BP-037", "OEM", 18500, "Бампер передний в цвет кузова", "Кузов", "1K0807211,1K0807211A", "VW Golf"),
		catalogItem("Зеркало боковое Valeo", "SM-038", "Valeo", 3200, "Зеркало боковое левое с подогревом", "Кузов", "1K1857521,1K1857521A", "VW Golf, Passat"),
		catalogItem("Коврик салона WeatherTech", "FM-039", "WeatherTech", 2500, "Комплект ковриков салона 4шт", "Салон", "Универсальный", "VW Golf, Passat"),
		catalogItem("Чехол на сиденье", "SC-040", "OEM", 3200, "Чехол на переднее сиденье", "Салон", "Универсальный", "Все модели"),
		catalogItem("Дворник передний Bosch", "WB-041", "Bosch", 850, "Дворник передний 26\"", "Дополнительно", "AER26T", "Универсальный"),
		catalogItem("Щетка стеклоочистителя Valeo", "WB-042", "Valeo", 650, "Щетка стеклоочистителя задняя", "Дополнительно", "SWF-350", "Универсальная"),
		catalogItem("Антенна Hirschmann", "ANT-043", "Hirschmann", 1200, "Антенна наружная магнитная", "Дополнительно", "Универсальная", "Все модели"),
	}
}

func catalogItem(name, article, brand string, price int64, description, category, vins, cars string) *model.ProductModel {
	return &model.ProductModel{
		Name:           name,
		Article:        article,
		Brand:          brand,
		Price:          decimal.NewFromInt(price),
		Description:    description,
		Category:       category,
		VINNumbers:     vins,
		CompatibleCars: cars,
	}
}
