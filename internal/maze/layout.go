package maze

// Classic is the hand-authored level shipped with the game.
// '.' open floor, '1' start, ' ' or '#' wall, digits 2 and 3 are portal pairs.
const Classic = `
.......    ...#...
...1....   ........
..    ..   ..    ..
..    ..   ..    ..
3.......   ....3..
......2    2......
..   ...   ..   ...
..    ..   ..    ..
..    ..   ........
..    ..   #......
`
